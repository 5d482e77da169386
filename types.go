package horcrux

import "github.com/horcrux-project/horcrux-go/shard"

// SplitResult is the outcome of a successful split. Horcruxes carries
// each shard's header and content; content is populated by
// SplitBuffer, but left empty by SplitFile, which streams shard bodies
// straight to disk instead of holding them in memory. Paths is
// populated only by SplitFile, with the file path written for each
// shard in the same order as Horcruxes.
type SplitResult struct {
	Horcruxes    []shard.Shard
	Paths        []string
	OriginalSize int
	TotalSize    int
}

// BindResult is the outcome of a successful bind. Data carries the
// reconstructed plaintext for BindHorcruxes; BindFiles streams the
// plaintext straight to outPath instead and leaves Data empty.
type BindResult struct {
	Data          []byte
	Filename      string
	HorcruxesUsed int
}
