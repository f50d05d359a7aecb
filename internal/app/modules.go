package app

import (
	"github.com/vk/calcgrid/internal/registry"
	"github.com/vk/calcgrid/modules/arithmetic"
	"github.com/vk/calcgrid/modules/columns"
	"github.com/vk/calcgrid/modules/resample"
)

// coreModules is the definitive list of all modules that are compiled into
// the calcgrid binary.
var coreModules = []registry.Module{
	&columns.Module{},
	&arithmetic.Module{},
	&resample.Module{},
}
