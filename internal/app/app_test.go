package app

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shapeframe"
)

type recorder struct {
	notices   []string
	downloads []*shapeframe.Download
	err       error
}

func (r *recorder) Notify(msg string) { r.notices = append(r.notices, msg) }

func (r *recorder) Deliver(d *shapeframe.Download) error {
	if r.err != nil {
		return r.err
	}
	r.downloads = append(r.downloads, d)
	return nil
}

func newController(t *testing.T) (*Controller, *recorder) {
	t.Helper()
	comp, err := shapeframe.New()
	require.NoError(t, err)
	rec := &recorder{}
	c := New(comp, rec, rec)
	t.Cleanup(func() { _ = c.Close() })
	return c, rec
}

func pngBytes(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveWithoutImage(t *testing.T) {
	c, rec := newController(t)

	err := c.Save()
	assert.ErrorIs(t, err, shapeframe.ErrNoImage)
	assert.True(t, IsNoImage(err))
	assert.Empty(t, rec.downloads)
	assert.Equal(t, []string{NoImageNotice}, rec.notices)
}

func TestGenerateWithoutImage(t *testing.T) {
	c, rec := newController(t)

	_, err := c.Generate()
	assert.ErrorIs(t, err, shapeframe.ErrNoImage)
	assert.Equal(t, []string{"Please upload an image first!"}, rec.notices)
}

func TestLoadRendersImmediately(t *testing.T) {
	c, rec := newController(t)

	require.NoError(t, c.Load(bytes.NewReader(pngBytes(t, color.NRGBA{R: 255, A: 255}))))
	assert.Empty(t, rec.notices)

	p := color.NRGBAModel.Convert(c.Canvas().At(250, 250)).(color.NRGBA)
	assert.GreaterOrEqual(t, p.R, uint8(240))
	assert.LessOrEqual(t, p.G, uint8(15))
}

func TestLoadInvalidKeepsImage(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.Load(bytes.NewReader(pngBytes(t, color.White))))
	before := c.State().Image

	err := c.Load(strings.NewReader("not an image"))
	var de *shapeframe.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Same(t, before, c.State().Image)
}

func TestSettersWaitForGenerate(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.Load(bytes.NewReader(pngBytes(t, color.NRGBA{B: 255, A: 255}))))

	c.SetShape(shapeframe.Square{})
	c.SetTitle("  Title ")
	c.SetDescription("Description")

	st := c.State()
	assert.Equal(t, shapeframe.Square{}, st.Shape)
	assert.Equal(t, "  Title ", st.Title)

	// Circle is still on the canvas: the slot corner shows the panel.
	p := color.NRGBAModel.Convert(c.Canvas().At(45, 45)).(color.NRGBA)
	assert.GreaterOrEqual(t, p.G, uint8(240))

	l, err := c.Generate()
	require.NoError(t, err)
	assert.True(t, l.HasText)
	assert.Equal(t, "Title", l.Title)
	assert.Equal(t, 270.0, l.Slot.Size)
}

func TestSaveDelivers(t *testing.T) {
	c, rec := newController(t)
	require.NoError(t, c.Load(bytes.NewReader(pngBytes(t, color.White))))

	require.NoError(t, c.Save())
	require.Len(t, rec.downloads, 1)
	d := rec.downloads[0]
	assert.Equal(t, "shaped-image.jpg", d.Name)
	assert.Equal(t, "image/jpeg", d.MIME)

	img, err := jpeg.Decode(bytes.NewReader(d.Data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 500, 500), img.Bounds())
	assert.Empty(t, rec.notices)
}

func TestSaveDeliverError(t *testing.T) {
	c, rec := newController(t)
	require.NoError(t, c.Load(bytes.NewReader(pngBytes(t, color.White))))
	rec.err = errors.New("disk full")

	err := c.Save()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestNilNotifier(t *testing.T) {
	comp, err := shapeframe.New()
	require.NoError(t, err)
	c := New(comp, nil, DelivererFunc(func(*shapeframe.Download) error { return nil }))
	defer func() { _ = c.Close() }()

	assert.ErrorIs(t, c.Save(), shapeframe.ErrNoImage)
}

func TestFuncAdapters(t *testing.T) {
	var got string
	NotifierFunc(func(msg string) { got = msg }).Notify("hi")
	assert.Equal(t, "hi", got)

	called := false
	require.NoError(t, DelivererFunc(func(*shapeframe.Download) error { called = true; return nil }).Deliver(nil))
	assert.True(t, called)
}

func TestConcurrentActions(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.Load(bytes.NewReader(pngBytes(t, color.White))))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.SetShape(shapeframe.Shapes()[i%5])
			_, err := c.Generate()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
