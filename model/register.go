package model

// init registers every supported model with the Global registry.
//
// Supported dimensions:
//
//	conformal    c2ga c3ga
//	euclidean    e2ga e3ga e4ga e5ga
//	homogeneous  h2ga h3ga h4ga
//	minkowski    m2ga m3ga
func init() {
	for _, kind := range Kinds {
		lo, hi, _ := kind.DimensionRange()
		for d := lo; d <= hi; d++ {
			Global.Register(Entry{
				Name:  LibraryName(kind, d),
				Kind:  kind,
				D:     d,
				Build: builder(kind, d),
			})
		}
	}
}

func builder(kind Kind, d int) func() (*Model, error) {
	return func() (*Model, error) {
		return newModel(kind, d)
	}
}
