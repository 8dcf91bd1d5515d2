package rollout

import "time"

type SeedGeneratorFnType func() int64

// Main rollout worker id, the only one calling the OnRollout listener
const mainWorkerId = 0

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for agents created without an explicit seed,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
