package tzutil

import (
	// This is needed for embedding tzdata into binary, so timezone resolution could work
	// in an app running on a scratch base Docker image without /usr/share/zoneinfo.
	_ "time/tzdata"
)
