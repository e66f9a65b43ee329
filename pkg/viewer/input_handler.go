package viewer

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// watchedKeys are the keys the viewer reacts to
var watchedKeys = []glfw.Key{
	glfw.KeyEscape,
	glfw.KeyS,
	glfw.KeyDown,
	glfw.KeySpace,
}

// InputHandler управляет вводом с клавиатуры
type InputHandler struct {
	window       *glfw.Window
	currentKeys  map[glfw.Key]bool
	previousKeys map[glfw.Key]bool
}

// NewInputHandler создает новый обработчик ввода
func NewInputHandler(window *glfw.Window) *InputHandler {
	return &InputHandler{
		window:       window,
		currentKeys:  make(map[glfw.Key]bool, len(watchedKeys)),
		previousKeys: make(map[glfw.Key]bool, len(watchedKeys)),
	}
}

// Update обновляет состояние ввода
func (ih *InputHandler) Update() {
	for _, key := range watchedKeys {
		ih.previousKeys[key] = ih.currentKeys[key]
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyDown проверяет, нажата ли клавиша в данный момент
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed проверяет, была ли клавиша нажата в этом кадре
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.IsKeyDown(key) && !ih.previousKeys[key]
}

// QuitRequested reports whether the user asked to close the viewer
func (ih *InputHandler) QuitRequested() bool {
	return ih.IsKeyPressed(glfw.KeyEscape) || ih.window.ShouldClose()
}

// ScreenshotRequested reports a fresh press of S or Down
func (ih *InputHandler) ScreenshotRequested() bool {
	return ih.IsKeyPressed(glfw.KeyS) || ih.IsKeyPressed(glfw.KeyDown)
}

// PauseToggled reports a fresh press of Space
func (ih *InputHandler) PauseToggled() bool {
	return ih.IsKeyPressed(glfw.KeySpace)
}
