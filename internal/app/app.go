// Package app holds the state behind the upload, generate and save actions
// and turns them into compositor calls.
package app

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/shapeframe"
)

// NoImageNotice is shown when generate or save is requested before an image
// has been loaded.
const NoImageNotice = "Please upload an image first!"

// Notifier shows a message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Notify calls f(msg).
func (f NotifierFunc) Notify(msg string) { f(msg) }

// Deliverer hands an exported frame to the user.
type Deliverer interface {
	Deliver(d *shapeframe.Download) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(d *shapeframe.Download) error

// Deliver calls f(d).
func (f DelivererFunc) Deliver(d *shapeframe.Download) error { return f(d) }

// State is the user's current input.
type State struct {
	Image       image.Image
	Shape       shapeframe.Shape
	Title       string
	Description string
}

// Controller serialises user actions against one canvas.
// Setters only record input; the canvas changes on Load and Generate.
type Controller struct {
	mu        sync.Mutex
	comp      *shapeframe.Compositor
	dc        *gg.Context
	state     State
	notifier  Notifier
	deliverer Deliverer
	log       *slog.Logger
}

// New creates a controller rendering with comp. The shape starts as Circle,
// the first entry of the shape selector.
func New(comp *shapeframe.Compositor, n Notifier, d Deliverer) *Controller {
	return &Controller{
		comp:      comp,
		dc:        comp.NewCanvas(),
		state:     State{Shape: shapeframe.Circle{}},
		notifier:  n,
		deliverer: d,
		log:       shapeframe.Logger().With(slog.String("component", "app")),
	}
}

// Close releases the canvas.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc.Close()
}

// State returns a copy of the current input.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Canvas returns the composed frame as last rendered.
func (c *Controller) Canvas() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc.Image()
}

// Load decodes an upload, makes it the current image and renders it with the
// current shape and text. On a decode error the previous image is kept.
func (c *Controller) Load(r io.Reader) error {
	img, err := shapeframe.Decode(r)
	if err != nil {
		return err
	}
	c.SetImage(img)
	return nil
}

// SetImage makes img the current image and renders it.
func (c *Controller) SetImage(img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Image = img
	c.renderLocked()
}

// SetShape selects the shape for the next render.
func (c *Controller) SetShape(s shapeframe.Shape) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Shape = s
}

// SetTitle sets the title for the next render.
func (c *Controller) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Title = title
}

// SetDescription sets the description for the next render.
func (c *Controller) SetDescription(desc string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Description = desc
}

// Generate re-renders the canvas from the current state. Without an image it
// shows NoImageNotice and returns shapeframe.ErrNoImage.
func (c *Controller) Generate() (shapeframe.FrameLayout, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Image == nil {
		c.notifyNoImage("generate")
		return shapeframe.FrameLayout{}, shapeframe.ErrNoImage
	}
	return c.renderLocked(), nil
}

// Save exports the canvas and delivers it. Without an image nothing is
// delivered; NoImageNotice is shown once and shapeframe.ErrNoImage returned.
func (c *Controller) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Image == nil {
		c.notifyNoImage("save")
		return shapeframe.ErrNoImage
	}

	d, err := shapeframe.ExportCanvas(c.dc)
	if err != nil {
		return err
	}
	if err := c.deliverer.Deliver(d); err != nil {
		return fmt.Errorf("app: deliver %s: %w", d.Name, err)
	}
	c.log.Info("frame saved", slog.String("name", d.Name), slog.Int("bytes", len(d.Data)))
	return nil
}

func (c *Controller) renderLocked() shapeframe.FrameLayout {
	l := c.comp.Render(c.dc, shapeframe.Request{
		Image:       c.state.Image,
		Shape:       c.state.Shape,
		Title:       c.state.Title,
		Description: c.state.Description,
	})
	c.log.Debug("frame rendered", slog.String("shape", c.state.Shape.Name()), slog.Bool("has_text", l.HasText))
	return l
}

func (c *Controller) notifyNoImage(action string) {
	c.log.Warn("action without image", slog.String("action", action))
	if c.notifier != nil {
		c.notifier.Notify(NoImageNotice)
	}
}

// IsNoImage reports whether err means no image was loaded.
func IsNoImage(err error) bool {
	return errors.Is(err, shapeframe.ErrNoImage)
}
