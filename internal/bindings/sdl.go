//go:build !ios && !android && (amd64 || arm64)

package bindings

// Thin checked wrappers over the registered entry points. Callback and
// userdata arguments are raw C values; ownership is handled by callers.

// Init calls SDL_Init.
func Init(flags uint32) (bool, error) {
	if err := checkLoaded(sdlInit != nil, "SDL_Init"); err != nil {
		return false, err
	}
	return sdlInit(flags), nil
}

// Quit calls SDL_Quit. It is a no-op before Load.
func Quit() {
	if loaded && sdlQuit != nil {
		sdlQuit()
	}
}

// GetError returns SDL_GetError(), or "" before Load.
func GetError() string {
	if !loaded || sdlGetError == nil {
		return ""
	}
	return sdlGetError()
}

// Version returns SDL_GetVersion() (major*1000000 + minor*1000 + micro),
// or 0 before Load.
func Version() int32 {
	if !loaded || sdlGetVersion == nil {
		return 0
	}
	return sdlGetVersion()
}

// SetLogOutputFunction calls SDL_SetLogOutputFunction.
func SetLogOutputFunction(cb, userdata uintptr) error {
	if err := checkLoaded(sdlSetLogOutputFunction != nil, "SDL_SetLogOutputFunction"); err != nil {
		return err
	}
	sdlSetLogOutputFunction(cb, userdata)
	return nil
}

// GetLogOutputFunction calls SDL_GetLogOutputFunction.
func GetLogOutputFunction() (cb, userdata uintptr, err error) {
	if err := checkLoaded(sdlGetLogOutputFunction != nil, "SDL_GetLogOutputFunction"); err != nil {
		return 0, 0, err
	}
	sdlGetLogOutputFunction(&cb, &userdata)
	return cb, userdata, nil
}

// GetDefaultLogOutputFunction calls SDL_GetDefaultLogOutputFunction (SDL 3.2.0+).
func GetDefaultLogOutputFunction() (uintptr, error) {
	if err := checkLoaded(sdlGetDefaultLogOutputFunction != nil, "SDL_GetDefaultLogOutputFunction"); err != nil {
		return 0, err
	}
	return sdlGetDefaultLogOutputFunction(), nil
}

// SetLogPriorities calls SDL_SetLogPriorities.
func SetLogPriorities(priority int32) error {
	if err := checkLoaded(sdlSetLogPriorities != nil, "SDL_SetLogPriorities"); err != nil {
		return err
	}
	sdlSetLogPriorities(priority)
	return nil
}

// SetLogPriority calls SDL_SetLogPriority.
func SetLogPriority(category, priority int32) error {
	if err := checkLoaded(sdlSetLogPriority != nil, "SDL_SetLogPriority"); err != nil {
		return err
	}
	sdlSetLogPriority(category, priority)
	return nil
}

// SetAssertionHandler calls SDL_SetAssertionHandler. A zero handler restores the default.
func SetAssertionHandler(handler, userdata uintptr) error {
	if err := checkLoaded(sdlSetAssertionHandler != nil, "SDL_SetAssertionHandler"); err != nil {
		return err
	}
	sdlSetAssertionHandler(handler, userdata)
	return nil
}

// GetAssertionHandler calls SDL_GetAssertionHandler.
func GetAssertionHandler() (handler, userdata uintptr, err error) {
	if err := checkLoaded(sdlGetAssertionHandler != nil, "SDL_GetAssertionHandler"); err != nil {
		return 0, 0, err
	}
	handler = sdlGetAssertionHandler(&userdata)
	return handler, userdata, nil
}

// GetDefaultAssertionHandler calls SDL_GetDefaultAssertionHandler.
func GetDefaultAssertionHandler() (uintptr, error) {
	if err := checkLoaded(sdlGetDefaultAssertionHandler != nil, "SDL_GetDefaultAssertionHandler"); err != nil {
		return 0, err
	}
	return sdlGetDefaultAssertionHandler(), nil
}

// AddTimer calls SDL_AddTimer. A zero id means failure.
func AddTimer(interval uint32, cb, userdata uintptr) (uint32, error) {
	if err := checkLoaded(sdlAddTimer != nil, "SDL_AddTimer"); err != nil {
		return 0, err
	}
	return sdlAddTimer(interval, cb, userdata), nil
}

// RemoveTimer calls SDL_RemoveTimer.
func RemoveTimer(id uint32) (bool, error) {
	if err := checkLoaded(sdlRemoveTimer != nil, "SDL_RemoveTimer"); err != nil {
		return false, err
	}
	return sdlRemoveTimer(id), nil
}

// AddHintCallback calls SDL_AddHintCallback.
func AddHintCallback(name string, cb, userdata uintptr) (bool, error) {
	if err := checkLoaded(sdlAddHintCallback != nil, "SDL_AddHintCallback"); err != nil {
		return false, err
	}
	return sdlAddHintCallback(name, cb, userdata), nil
}

// RemoveHintCallback calls SDL_RemoveHintCallback.
func RemoveHintCallback(name string, cb, userdata uintptr) error {
	if err := checkLoaded(sdlRemoveHintCallback != nil, "SDL_RemoveHintCallback"); err != nil {
		return err
	}
	sdlRemoveHintCallback(name, cb, userdata)
	return nil
}

// SetHint calls SDL_SetHint.
func SetHint(name, value string) (bool, error) {
	if err := checkLoaded(sdlSetHint != nil, "SDL_SetHint"); err != nil {
		return false, err
	}
	return sdlSetHint(name, value), nil
}

// GetHint calls SDL_GetHint. An unset hint reads as "".
func GetHint(name string) (string, error) {
	if err := checkLoaded(sdlGetHint != nil, "SDL_GetHint"); err != nil {
		return "", err
	}
	return sdlGetHint(name), nil
}

// RunOnMainThread calls SDL_RunOnMainThread (SDL 3.2.0+).
func RunOnMainThread(cb, userdata uintptr, wait bool) (bool, error) {
	if err := checkLoaded(sdlRunOnMainThread != nil, "SDL_RunOnMainThread"); err != nil {
		return false, err
	}
	return sdlRunOnMainThread(cb, userdata, wait), nil
}

// IsMainThread calls SDL_IsMainThread (SDL 3.2.0+).
func IsMainThread() (bool, error) {
	if err := checkLoaded(sdlIsMainThread != nil, "SDL_IsMainThread"); err != nil {
		return false, err
	}
	return sdlIsMainThread(), nil
}
