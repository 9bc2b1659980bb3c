package usecase

import (
	"memo-manager/internal/model"
)

// BeginEdit opens the edit form for memo.
func (uc *implUseCase) BeginEdit(m model.Memo) {
	uc.mu.Lock()
	uc.currentEditID = m.ID
	uc.mu.Unlock()

	uc.view.FillEditForm(m.Title, m.Content)
	uc.view.ShowEditForm()
	uc.view.ScrollToEditForm()
}

// CancelEdit closes the edit form and returns to the create form.
func (uc *implUseCase) CancelEdit() {
	uc.mu.Lock()
	uc.currentEditID = ""
	uc.mu.Unlock()

	uc.view.ClearEditForm()
	uc.view.ShowCreateForm()
	uc.view.ScrollToTop()
}

func (uc *implUseCase) CurrentEditID() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.currentEditID
}
