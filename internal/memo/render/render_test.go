package render_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memo-manager/internal/memo/render"
	"memo-manager/internal/model"
)

type container struct {
	markup string
	calls  int
}

func (c *container) ReplaceChildren(markup string) {
	c.markup = markup
	c.calls++
}

var fixedNow = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC) }

func TestRenderEmpty(t *testing.T) {
	c := &container{markup: "stale"}
	render.New(fixedNow).Render(c, nil)

	assert.Equal(t, 1, c.calls)
	assert.Contains(t, c.markup, `class="no-memos"`)
	assert.NotContains(t, c.markup, "memo-item")
	assert.NotContains(t, c.markup, "stale")
}

func TestRenderKeepsOrderAndEscapes(t *testing.T) {
	memos := []model.Memo{
		{ID: "2", Title: "<b>second</b>", Content: "x & y", Date: "2024-05-01 10:00"},
		{ID: "1", Title: "first", Content: `"quoted"`, Date: "2024-04-01 09:00"},
	}
	c := &container{}
	render.New(fixedNow).Render(c, memos)

	assert.Equal(t, 2, strings.Count(c.markup, `class="memo-item"`))
	assert.Less(t, strings.Index(c.markup, `data-id="2"`), strings.Index(c.markup, `data-id="1"`))
	assert.Contains(t, c.markup, "&lt;b&gt;second&lt;/b&gt;")
	assert.Contains(t, c.markup, "x &amp; y")
	assert.Contains(t, c.markup, "&quot;quoted&quot;")
	assert.NotContains(t, c.markup, "<b>second")
	assert.Contains(t, c.markup, "2024-05-01 10:00")
}

func TestRenderPreview(t *testing.T) {
	long := strings.Repeat("z", 150)
	c := &container{}
	render.New(fixedNow).Render(c, []model.Memo{{ID: "1", Title: "t", Content: long, Date: "2024-01-01 00:00"}})

	assert.Contains(t, c.markup, `<span class="memo-text">`+strings.Repeat("z", 100)+"...</span>")
	assert.NotContains(t, c.markup, strings.Repeat("z", 101))
}

func TestRenderMissingDateUsesClock(t *testing.T) {
	c := &container{}
	render.New(fixedNow).Render(c, []model.Memo{{ID: "1", Title: "t", Content: "c"}})
	assert.Contains(t, c.markup, "2024-01-02 03:04")
}

func TestRenderRowActions(t *testing.T) {
	c := &container{}
	render.New(fixedNow).Render(c, []model.Memo{{ID: "42", Title: "t", Content: "c", Date: "d"}})

	for _, action := range []string{render.ActionOpen, render.ActionEdit, render.ActionDelete} {
		assert.Contains(t, c.markup, `value="`+action+`"`)
	}
	assert.Contains(t, c.markup, `action="`+render.ActionPath+`"`)
	assert.Contains(t, c.markup, `name="id" value="42"`)
}

func TestDelegateStopsAtInnermostHandler(t *testing.T) {
	d := render.NewDelegate()
	var got []string
	d.On(render.ActionOpen, func(_ context.Context, id string) { got = append(got, "open:"+id) })
	d.On(render.ActionEdit, func(_ context.Context, id string) { got = append(got, "edit:"+id) })
	d.On(render.ActionDelete, func(_ context.Context, id string) { got = append(got, "delete:"+id) })

	ctx := context.Background()
	require.True(t, d.Dispatch(ctx, render.ClickEvent(render.ActionEdit, "7")))
	require.True(t, d.Dispatch(ctx, render.ClickEvent(render.ActionDelete, "7")))
	require.True(t, d.Dispatch(ctx, render.ClickEvent(render.ActionOpen, "7")))

	assert.Equal(t, []string{"edit:7", "delete:7", "open:7"}, got)
}

func TestDelegateBubblesToRow(t *testing.T) {
	d := render.NewDelegate()
	var got string
	d.On(render.ActionOpen, func(_ context.Context, id string) { got = id })

	// nothing bound for "edit": the click bubbles to the row
	assert.True(t, d.Dispatch(context.Background(), render.ClickEvent(render.ActionEdit, "9")))
	assert.Equal(t, "9", got)
}

func TestDelegateIgnoresUnboundAndEmpty(t *testing.T) {
	d := render.NewDelegate()
	assert.False(t, d.Dispatch(context.Background(), render.ClickEvent(render.ActionEdit, "1")))

	d.On(render.ActionOpen, func(context.Context, string) { t.Fatal("must not fire without id") })
	assert.False(t, d.Dispatch(context.Background(), render.ClickEvent(render.ActionOpen, "")))
}

func TestRenderOpenButtonHoldsPhrasingContent(t *testing.T) {
	c := &container{}
	render.New(fixedNow).Render(c, []model.Memo{{ID: "42", Title: "t", Content: "c", Date: "d"}})

	start := strings.Index(c.markup, `class="memo-content"`)
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(c.markup[start:], "</button>")
	require.Greater(t, end, 0)

	button := c.markup[start : start+end]
	assert.NotContains(t, button, "<div")
	assert.Contains(t, button, `<span class="memo-title">`)
	assert.Contains(t, button, `<span class="memo-date">`)
}
