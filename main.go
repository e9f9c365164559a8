package main

import (
	"sketchParty/cmd/app"

	_ "sketchParty/docs"
)

// @title           Sketch Party API
// @version         1.0.0
// @description     Backend for the exquisite corpse multiplayer drawing game.
// @BasePath        /api
func main() {
	app.GetApp().LetsGo()
}
