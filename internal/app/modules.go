package app

import (
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/modules/firstfree"
	"github.com/specialistvlad/burstarena/modules/lastfree"
	"github.com/specialistvlad/burstarena/modules/random"
	"github.com/specialistvlad/burstarena/modules/sloth"
	"github.com/specialistvlad/burstarena/modules/tactician"
)

// coreModules is the definitive list of all strategies that are compiled
// into the burstarena binary, in discovery order.
var coreModules = []registry.Module{
	&firstfree.Module{},
	&lastfree.Module{},
	&random.Module{},
	&tactician.Module{},
	&sloth.Module{},
}
