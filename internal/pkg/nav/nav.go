package nav

// LoginPath is where unauthorized sessions are sent.
const LoginPath = "/login"

// Navigator is asked to move the user to a different screen. The gateway
// calls it when a request comes back unauthorized; interactive surfaces
// decide what "navigating" means for them.
type Navigator interface {
	Navigate(path string)
}

// Func adapts a plain function to the Navigator interface.
type Func func(path string)

func (f Func) Navigate(path string) { f(path) }

// Noop ignores navigation requests.
var Noop Navigator = Func(func(string) {})
