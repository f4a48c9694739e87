package config

import "go.uber.org/fx"

// Module provides the merged defaults, file, env and flag configuration.
var Module = fx.Provide(Load)
