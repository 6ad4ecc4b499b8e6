package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/crt"
)

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound = crt.NoRecordFound

// ResizeFailed - Custom error to inform that the map could not grow its bucket array
type ResizeFailed = crt.ResizeFailed
