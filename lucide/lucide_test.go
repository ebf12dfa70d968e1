package lucide

import (
	"context"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dot = `<circle cx="12" cy="12" r="1" />`

func TestDefaults(t *testing.T) {
	a := New()
	assert.Equal(t, "", a.Classes())
	assert.Equal(t, DefaultXmlns, a.Xmlns())
	assert.Equal(t, "16", a.Width())
	assert.Equal(t, "16", a.Height())
	assert.Equal(t, "0 0 24 24", a.ViewBox())
	assert.Equal(t, "none", a.Fill())
	assert.Equal(t, "currentColor", a.Stroke())
	assert.Equal(t, "2", a.StrokeWidth())
	assert.Equal(t, "round", a.StrokeLinecap())
	assert.Equal(t, "round", a.StrokeLinejoin())
}

func TestSettersChain(t *testing.T) {
	a := New().SetHeight("24").SetWidth("96").SetStrokeWidth("1.625").SetClasses("animate-pulse")
	assert.Equal(t, "24", a.Height())
	assert.Equal(t, "96", a.Width())
	assert.Equal(t, "1.625", a.StrokeWidth())
	assert.Equal(t, "animate-pulse", a.Classes())

	b := NewWithAttributes("c", "x", "1", "2", "0 0 1 1", "#fff", "red", "3", "butt", "miter")
	assert.Equal(t, "miter", b.StrokeLinejoin())
	assert.Equal(t, "butt", b.StrokeLinecap())
	assert.Equal(t, "#fff", b.Fill())
}

func TestRenderDefaults(t *testing.T) {
	out, err := String(context.Background(), func(ctx context.Context, w io.Writer) error {
		return Render(ctx, w, dot)
	})
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 24 24" `+
		`fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`+
		dot+`</svg>`, out)
}

func TestRenderFollowsStore(t *testing.T) {
	store := NewStore(New().SetClasses(`a "b"`))
	ctx := Provide(context.Background(), store)
	icon := Component(func(ctx context.Context, w io.Writer) error {
		return Render(ctx, w, dot)
	})

	out, err := String(ctx, icon)
	require.NoError(t, err)
	assert.Contains(t, out, `class="a &#34;b&#34;"`)
	assert.Contains(t, out, `width="16"`)

	store.Update(func(a *Attributes) { a.SetWidth("48") })
	out, err = String(ctx, icon)
	require.NoError(t, err)
	assert.Contains(t, out, `width="48"`)
}

func TestStoreSubscribe(t *testing.T) {
	store := NewStore(nil)
	var got []string
	cancel := store.Subscribe(func(a *Attributes) { got = append(got, a.Stroke()) })

	store.Set(New().SetStroke("red"))
	store.Update(func(a *Attributes) { a.SetStroke("blue") })
	cancel()
	cancel()
	store.Set(New().SetStroke("green"))

	assert.Equal(t, []string{"red", "blue"}, got)
	assert.Equal(t, "green", store.Get().Stroke())
}

func TestStoreSubscriberSetsValue(t *testing.T) {
	store := NewStore(nil)
	store.Subscribe(func(a *Attributes) {
		if a.Stroke() == "red" {
			store.Set(New().SetStroke("blue"))
		}
	})
	var got []string
	store.Subscribe(func(a *Attributes) { got = append(got, a.Stroke()) })

	store.Set(New().SetStroke("red"))

	assert.Equal(t, []string{"red", "blue"}, got)
	assert.Equal(t, "blue", store.Get().Stroke())
}

func TestStoreDeliversSerially(t *testing.T) {
	store := NewStore(nil)
	var (
		inFlight, maxInFlight atomic.Int32
		mu                    sync.Mutex
		last                  string
		count                 int
	)
	store.Subscribe(func(a *Attributes) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		mu.Lock()
		last = a.Width()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update(func(a *Attributes) { a.SetWidth(strconv.Itoa(i)) })
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 32, count)
	assert.Equal(t, store.Get().Width(), last)
}

func TestStoreIsolation(t *testing.T) {
	attrs := New()
	store := NewStore(attrs)
	attrs.SetFill("black")
	assert.Equal(t, "none", store.Get().Fill())

	got := store.Get()
	got.SetFill("white")
	assert.Equal(t, "none", store.Get().Fill())
}

func TestStoreConcurrent(t *testing.T) {
	store := NewStore(nil)
	ctx := Provide(context.Background(), store)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Update(func(a *Attributes) { a.SetFill("red") })
		}()
		go func() {
			defer wg.Done()
			_ = Current(ctx).Fill()
		}()
	}
	wg.Wait()
	assert.Equal(t, "red", store.Get().Fill())
}

func TestCurrentWithoutStore(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, DefaultStroke, Current(context.Background()).Stroke())
}

func TestIndexLookup(t *testing.T) {
	mk := func(s string) Component {
		return func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, s)
			return err
		}
	}
	idx := Index{
		{Name: "arrow-up", Module: "arrow_up", Component: mk("arrow")},
		{Name: "box", Module: "box_", Component: mk("box")},
		{Name: "type", Module: "type_", Component: mk("type")},
	}

	c, ok := idx.Lookup("box")
	require.True(t, ok)
	out, err := String(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "box", out)

	c, ok = idx.Lookup("arrow_up")
	require.True(t, ok)
	out, err = String(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "arrow", out)

	_, ok = idx.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"arrow-up", "box", "type"}, idx.Names())
}
