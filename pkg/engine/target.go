package engine

// Values maps property names to numeric values. It is the wire format
// between callers, presets, and the engine.
type Values map[string]float64

// clone returns a shallow copy so handles never alias caller maps.
func (v Values) clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Target is the thing an animation mutates: a bag of named numeric
// properties. Hosts adapt their element type to this interface.
type Target interface {
	// Property returns the current value of the named property.
	// Unknown properties read as 0.
	Property(name string) float64
	// SetProperty writes the named property.
	SetProperty(name string, value float64)
}

// Object is a map-backed Target. It is the reference implementation
// used by tests and simple hosts.
//
// Object is NOT thread-safe. It must only be accessed from the UI
// thread.
type Object struct {
	props Values
}

// NewObject creates an Object with the given initial property values.
func NewObject(initial Values) *Object {
	return &Object{props: initial.clone()}
}

// Property returns the current value of the named property.
func (o *Object) Property(name string) float64 {
	return o.props[name]
}

// SetProperty writes the named property.
func (o *Object) SetProperty(name string, value float64) {
	if o.props == nil {
		o.props = make(Values)
	}
	o.props[name] = value
}

// Values returns a copy of the current property values.
func (o *Object) Values() Values {
	return o.props.clone()
}
