// Package shapeframe composes framed, shape-masked images.
//
// # Overview
//
// shapeframe takes a decoded image, masks it into one of a fixed set of
// shapes (circle, square, rectangle, triangle, star), optionally adds a
// title and a word-wrapped description, and draws the result onto a padded
// panel with a border. The composed frame can then be exported as a JPEG
// download. Drawing is done with the gogpu/gg software renderer.
//
// # Quick Start
//
//	img, err := shapeframe.DecodeBytes(upload)
//	if err != nil {
//	    return err
//	}
//
//	comp, err := shapeframe.New()
//	if err != nil {
//	    return err
//	}
//
//	dc := comp.NewCanvas()
//	comp.Render(dc, shapeframe.Request{
//	    Image:       img,
//	    Shape:       shapeframe.Star{},
//	    Title:       "Summer",
//	    Description: "A long weekend by the sea",
//	})
//
//	dl, err := shapeframe.Export(dc.Image())
//
// # Layout
//
// The frame is a pure function of its inputs. The image slot is 420 units
// square when there is no text and 270 units square when a title or a
// description is present. It is centred horizontally and starts 10 units
// below the top padding. The image is stretched to fill the slot; the
// aspect ratio is not preserved.
//
// # Coordinate System
//
// Same as gg: origin at the top-left, X to the right, Y down, angles in
// radians increasing clockwise on screen.
package shapeframe
