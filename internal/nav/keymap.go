package nav

type KeyHandler func(key string) bool

func CreateKeyHandler(f func()) KeyHandler {
	return func(key string) bool {
		f()
		return true
	}
}

type KeyMap map[string]KeyHandler

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

func (km KeyMap) HandleKey(key string) bool {
	if handler, ok := km[key]; ok {
		return handler(key)
	}
	return false
}

func (km KeyMap) Bind(key string, handler KeyHandler) {
	km[key] = handler
}

// KeyMap returns the viewer's keyboard bindings. Printable keys are
// bound by the character they produce; quit is invoked on Escape.
func (n *Navigator) KeyMap(quit func()) KeyMap {
	km := CreateKeyMap()
	km.Bind("1", CreateKeyHandler(func() { n.SetType(Mandelbrot) }))
	km.Bind("2", CreateKeyHandler(func() { n.SetType(Julia) }))
	for _, key := range []string{"r", "R"} {
		km.Bind(key, CreateKeyHandler(n.Reset))
	}
	for _, key := range []string{"z", "Z"} {
		km.Bind(key, CreateKeyHandler(n.ZoomIn))
	}
	for _, key := range []string{"x", "X"} {
		km.Bind(key, CreateKeyHandler(n.ZoomOut))
	}
	km.Bind("Escape", CreateKeyHandler(quit))
	return km
}
