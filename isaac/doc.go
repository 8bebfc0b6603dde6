// Package isaac implements Bob Jenkins' ISAAC pseudorandom word generator,
// the incremental seeding protocol used to fold arbitrary entropy into its
// state, and an unbiased uniform sampler built on the output words.
//
// ISAAC is fast and well mixed but it is not a CSPRNG; do not use it for key
// material.
//
// A typical caller seeds once and draws from a Stream:
//
//	state := isaac.NewState()
//	isaac.Seed(state, isaac.SystemEntropy(nil)...)
//	stream := isaac.NewStream(state)
//	card := stream.Uniform(51)
//
// State and Stream do no locking. Use Locked when several goroutines draw from
// one generator.
package isaac
