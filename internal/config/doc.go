// Package config loads tournament configuration from HCL files.
//
// A configuration path is either a single .hcl file or a directory whose
// .hcl files are read recursively in lexical order. Files may hold one
// `tournament` block in total and any number of `strategy "name"` blocks,
// at most one per name:
//
//	tournament {
//	  rounds       = 3
//	  board_length = 20
//	  budget       = "100ms"
//	  strategies   = ["first_free", "random"]
//	}
//
//	strategy "random" {
//	  seed = env.ARENA_SEED
//	}
//
// Expressions are evaluated against an `env` object holding the process
// environment, plus a handful of cty standard library functions. Attributes
// of a strategy block other than `disqualified` are the strategy's options;
// they are kept as an undecoded body until Strategy.Decode is called with
// the module's options struct.
package config
