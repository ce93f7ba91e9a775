package token

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, int(KwStatic-KwBreak)+1)
	for k := KwBreak; k <= KwStatic; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// LookupKeyword returns the keyword kind for ident. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
