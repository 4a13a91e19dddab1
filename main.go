package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lidarsim/app"
	"lidarsim/engine"
)

func main() {
	scene := engine.NewScene()

	addGroup(scene, 325, 75, color.NRGBA{R: 255, A: 150},
		circle(0, 0, 50))
	addGroup(scene, 325, 325, color.NRGBA{B: 255, A: 255},
		circle(0, 0, 50), rect(50, 0, 100, 100, 0))
	addGroup(scene, 75, 325, color.NRGBA{G: 255, A: 255},
		rect(0, 0, 100, 100, 0))
	addGroup(scene, 375, 75, color.NRGBA{R: 255, G: 255, A: 255},
		circle(0, 0, 50))

	viewers := []*app.Viewer{
		viewer(150, 75, 0, 100, 100, 200, 1),
		viewer(450, 200, 180, 200, 100, 100, 1),
	}

	config := app.DefaultConfig()
	a := app.NewApp(scene, viewers, config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight(len(viewers)))
	ebiten.SetWindowTitle("Lidar Scene")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

func circle(x, y, r float64) engine.Shape {
	c, err := engine.NewCircle(x, y, r)
	if err != nil {
		log.Fatal(err)
	}
	return c
}

func rect(x, y, w, h, angle float64) engine.Shape {
	r, err := engine.NewRect(x, y, w, h, angle)
	if err != nil {
		log.Fatal(err)
	}
	return r
}

func addGroup(scene *engine.Scene, x, y float64, clr color.NRGBA, shapes ...engine.Shape) int {
	id := scene.AddGroup(engine.NewGroup(x, y, shapes...))
	if err := scene.ColorGroup(id, clr); err != nil {
		log.Fatal(err)
	}
	return id
}

func viewer(x, y, heading, fov float64, resolution int, maxRange, stepSize float64) *app.Viewer {
	v, err := app.NewViewer(x, y, heading, fov, resolution, maxRange, stepSize)
	if err != nil {
		log.Fatal(err)
	}
	return v
}
