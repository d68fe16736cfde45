package sandbox

type Z struct{}

type S[N any] struct{}

type Handle[T any, N any] struct {
	values *[]T
}

type Pos[N any] struct{}

func New[T any]() Handle[T, Z] {
	return Handle[T, Z]{values: new([]T)}
}

func Push[T any, N any](h Handle[T, N], v T) Handle[T, S[N]] {
	*h.values = append(*h.values, v)
	return Handle[T, S[N]]{values: h.values}
}

func (h Handle[T, N]) Len() int {
	return len(*h.values)
}

func Front[M any]() Pos[S[M]] {
	return Pos[S[M]]{}
}

func Get[T any, M any](h Handle[T, S[M]], _ Pos[S[M]]) T {
	return (*h.values)[0]
}

func Pop[T any, M any](h Handle[T, S[M]]) (Handle[T, M], T) {
	last := (*h.values)[len(*h.values)-1]
	*h.values = (*h.values)[:len(*h.values)-1]
	return Handle[T, M]{values: h.values}, last
}

func Swap[T any, M any](h Handle[T, S[M]], _, _ Pos[S[M]]) Handle[T, S[M]] {
	return h
}

func ReleaseGet[T any, M any](h Handle[T, S[M]], p Pos[S[M]]) T {
	return Get(h, p)
}

func ReleaseRef[T any, M any](h Handle[T, S[M]], _ Pos[S[M]]) *T {
	return &(*h.values)[0]
}

func TryNarrow[Target any, T any, N any](h Handle[T, N]) (Handle[T, Target], bool) {
	return Handle[T, Target]{values: h.values}, true
}

func AsNonEmpty[T any, N any](h Handle[T, N]) (Handle[T, S[Z]], bool) {
	return TryNarrow[S[Z]](h)
}
