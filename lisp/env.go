package lisp

// Env is a single scope in the environment chain.  Parent links only point
// outward, toward the root, so the chain is a tree and never contains a
// cycle.  The root environment holds the builtin bindings and lives for the
// lifetime of its Interpreter.
type Env struct {
	scope  map[string]Value
	parent *Env
}

// NewEnv initializes and returns a new Env whose lookups fall back to
// parent.  Pass nil to create a root environment.
func NewEnv(parent *Env) *Env {
	return &Env{
		scope:  make(map[string]Value),
		parent: parent,
	}
}

// Get returns the value bound to name, searching from env outward to the
// root.  Get fails with ErrUndefinedVariable when no environment in the
// chain binds name.
func (env *Env) Get(name string) (Value, error) {
	if v, ok := env.scope[name]; ok {
		return v, nil
	}
	if env.parent != nil {
		return env.parent.Get(name)
	}
	return Value{}, undefinedVariable(name)
}

// Define binds name to v in env itself, shadowing any binding of name in a
// parent.  An existing local binding is overwritten.  This is the operation
// backing ``let'' and call-time parameter binding.
func (env *Env) Define(name string, v Value) {
	env.scope[name] = v
}

// Set replaces the nearest existing binding of name, searching from env
// outward.  Unlike Define it never creates a binding; when name is unbound
// in the whole chain Set fails with ErrUndefinedVariable.
func (env *Env) Set(name string, v Value) error {
	if _, ok := env.scope[name]; ok {
		env.scope[name] = v
		return nil
	}
	if env.parent != nil {
		return env.parent.Set(name, v)
	}
	return undefinedVariable(name)
}
