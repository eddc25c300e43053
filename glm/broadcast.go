package glm

//go:generate go run ../cmd/glmgen -output vec_trig.go

// Componentwise broadcast: apply f to every component of a fixed-arity
// array and rebuild. One routine per arity; the per-function vector methods
// in vec_trig.go are generated on top of these, so no function ever carries
// its own loop.

func map2[E, R any](v [2]E, f func(E) R) [2]R {
	return [2]R{f(v[0]), f(v[1])}
}

func map3[E, R any](v [3]E, f func(E) R) [3]R {
	return [3]R{f(v[0]), f(v[1]), f(v[2])}
}

func map4[E, R any](v [4]E, f func(E) R) [4]R {
	return [4]R{f(v[0]), f(v[1]), f(v[2]), f(v[3])}
}
