package core

// Swap exchanges seq[i] and seq[j]. Indices must be valid for seq;
// i == j is allowed and leaves seq unchanged.
func Swap[T any](seq []T, i, j int) {
	seq[i], seq[j] = seq[j], seq[i]
}

// SwapCounted is Swap plus a Stats update.
func SwapCounted[T any](seq []T, i, j int, st *Stats) {
	st.CountSwap()
	seq[i], seq[j] = seq[j], seq[i]
}
