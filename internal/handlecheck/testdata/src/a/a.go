package a

import "sandbox"

type Z = sandbox.Z

func consumedByPush() {
	h := sandbox.New[int]()
	h1 := sandbox.Push(h, 1)
	_ = sandbox.Push(h, 2) // want `h is used after being consumed by Push`
	_ = h1
}

func consumedByPop() {
	h := sandbox.Push(sandbox.New[int](), 1)
	h0, _ := sandbox.Pop(h)
	_ = sandbox.Get(h, sandbox.Front[Z]()) // want `h is used after being consumed by Pop`
	_ = h.Len()                            // want `h is used after being consumed by Pop`
	_ = h0
}

func consumedByRelease() {
	h := sandbox.Push(sandbox.New[string](), "a")
	_ = sandbox.ReleaseGet(h, sandbox.Front[Z]())
	sandbox.Push(h, "b") // want `h is used after being consumed by ReleaseGet`

	h2 := sandbox.Push(sandbox.New[string](), "a")
	ref := sandbox.ReleaseRef(h2, sandbox.Front[Z]())
	*ref = "b"
	sandbox.Pop(h2) // want `h2 is used after being consumed by ReleaseRef`
}

func explicitInstantiation() {
	h := sandbox.Push(sandbox.New[int](), 1)
	sandbox.Pop[int, Z](h)
	sandbox.Pop(h) // want `h is used after being consumed by Pop`
}

func reassignment() {
	h := sandbox.Push(sandbox.New[int](), 1)
	p := sandbox.Front[Z]()

	h = sandbox.Swap(h, p, p)
	h = sandbox.Swap(h, p, p)
	_ = sandbox.Get(h, p)

	for i := 0; i < 3; i++ {
		h = sandbox.Swap(h, p, p)
	}
	_ = sandbox.Get(h, p)
}

func nestedBlocks(cond bool) {
	h := sandbox.Push(sandbox.New[int](), 1)
	p := sandbox.Front[Z]()

	if cond {
		sandbox.Pop(h)
		_ = sandbox.Get(h, p) // want `h is used after being consumed by Pop`
	}

	switch {
	case cond:
		sandbox.Swap(h, p, p)
		_ = h.Len() // want `h is used after being consumed by Swap`
	default:
		_ = h.Len()
	}

	_ = sandbox.Get(h, p)
}

func narrowing(cond bool) {
	h := sandbox.Push(sandbox.New[int](), 1)
	if _, ok := sandbox.TryNarrow[sandbox.S[Z]](h); !ok {
		_ = sandbox.Get(h, sandbox.Front[Z]())
	} else {
		_ = h.Len() // want `h is used after being consumed by TryNarrow`
	}
	_ = sandbox.Get(h, sandbox.Front[Z]()) // want `h is used after being consumed by TryNarrow`

	h2 := sandbox.Push(sandbox.New[int](), 1)
	h3, ok := sandbox.TryNarrow[sandbox.S[sandbox.S[Z]]](h2)
	if ok {
		_ = h2.Len() // want `h2 is used after being consumed by TryNarrow`
		_ = h3.Len()
	} else {
		_ = h2.Len()
	}

	h4 := sandbox.New[int]()
	if _, ok := sandbox.AsNonEmpty(h4); !ok {
		_ = h4.Len()
	}
	_ = h4.Len() // want `h4 is used after being consumed by AsNonEmpty`

	if cond {
		h4 = sandbox.New[int]()
		_ = h4.Len()
	}
}

func closures() {
	h := sandbox.Push(sandbox.New[int](), 1)
	sandbox.Pop(h)

	// function literals are checked on their own.
	f := func() int {
		return h.Len()
	}
	_ = f

	g := func(h sandbox.Handle[int, sandbox.S[Z]]) {
		sandbox.Pop(h)
		_ = h.Len() // want `h is used after being consumed by Pop`
	}
	_ = g
}
