package bernstein3d

/*
Packed index maps for the three coefficient layouts. Each map is a pure
function so it can be tested independently of tensor storage. A false
second return marks an index outside the valid range; callers translate
that to a 0.0 read or a refused write.
*/

// Index3D maps (l,m,n) with 0<=l<=nx, 0<=m<=ny, 0<=n<=nz onto the flat
// row-major index (nz+1)(ny+1)l + (nz+1)m + n.
func Index3D(nx, ny, nz, l, m, n int) (k int, ok bool) {
	if l < 0 || m < 0 || n < 0 || l > nx || m > ny || n > nz {
		return
	}
	k = (nz+1)*((ny+1)*l+m) + n
	ok = true
	return
}

// IndexSym maps the unordered triple {l,m,n}, 0<=l,m,n<=N, onto its
// tetrahedral packed slot. The triple is first canonicalized to
// l>=m>=n by recursive reordering, then packed as
// l(l+1)(l+2)/6 + m(m+1)/2 + n.
func IndexSym(N, l, m, n int) (k int, ok bool) {
	switch {
	case m > l:
		return IndexSym(N, m, l, n)
	case n > m:
		return IndexSym(N, l, n, m)
	case n < 0 || l > N:
		return
	}
	k = l*(l+1)*(l+2)/6 + m*(m+1)/2 + n
	ok = true
	return
}

// IndexMix canonicalizes only the first pair (l>=m) and leaves n free:
// (l(l+1)/2 + m)(Nz+1) + n.
func IndexMix(N, Nz, l, m, n int) (k int, ok bool) {
	switch {
	case m > l:
		return IndexMix(N, Nz, m, l, n)
	case m < 0 || n < 0 || l > N || n > Nz:
		return
	}
	k = (l*(l+1)/2+m)*(Nz+1) + n
	ok = true
	return
}

// NumPars3D is the full coefficient-cube size (nx+1)(ny+1)(nz+1).
func NumPars3D(nx, ny, nz int) int { return (nx + 1) * (ny + 1) * (nz + 1) }

// NumParsSym counts unordered triples with repetition in [0,N]:
// (N+1)(N+2)(N+3)/6.
func NumParsSym(N int) int { return (N + 1) * (N + 2) * (N + 3) / 6 }

// NumParsMix counts unordered pairs in [0,N] crossed with [0,Nz]:
// (N+1)(N+2)/2 * (Nz+1).
func NumParsMix(N, Nz int) int { return (N + 1) * (N + 2) / 2 * (Nz + 1) }
