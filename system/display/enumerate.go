package display

import (
	"log"

	"github.com/pkg/errors"
)

// QueryFunc fills record with the mode at index and reports true, or reports false
// once index is past the last mode the driver knows about.
type QueryFunc func(index uint32, record *RawModeRecord) bool

// Allocator provides the record buffer used for a single enumeration
type Allocator interface {
	Alloc() (*RawModeRecord, error)
	Free(record *RawModeRecord) error
}

// HeapAllocator allocates records on the Go heap
type HeapAllocator struct{}

var _ Allocator = HeapAllocator{}

func (HeapAllocator) Alloc() (*RawModeRecord, error) {
	return new(RawModeRecord), nil
}

func (HeapAllocator) Free(*RawModeRecord) error {
	return nil
}

// Enumerator bundles the driver query with the allocator for its record buffer
type Enumerator struct {
	Query     QueryFunc
	Allocator Allocator
}

// Enumerate walks every mode index until the driver reports exhaustion and returns
// the distinct modes in Compare order. If no Allocator is set, the Go heap is used.
func (e *Enumerator) Enumerate() ([]Mode, error) {
	alloc := e.Allocator
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	return Enumerate(e.Query, alloc)
}

// Enumerate calls query with increasing mode indices, starting at zero, until it
// returns false. Every record it fills is decoded; duplicate modes are collapsed and
// the result is sorted by Compare. A driver with no modes yields an empty slice.
//
// The record is acquired once from alloc and released on return.
func Enumerate(query QueryFunc, alloc Allocator) (modes []Mode, err error) {
	if query == nil {
		return nil, errors.New("display: nil QueryFunc is invalid")
	}
	if alloc == nil {
		return nil, errors.New("display: nil Allocator is invalid")
	}

	record, err := alloc.Alloc()
	if err != nil {
		return nil, errors.Wrap(err, "display: cannot allocate mode record")
	}
	defer func() {
		if err := alloc.Free(record); err != nil {
			log.Printf("display: error releasing mode record: %s\n", err)
		}
	}()

	set := NewResolutionSet()
	for index := uint32(0); ; index++ {
		record.Prepare()
		if !query(index, record) {
			break
		}
		set.Add(Decode(record))
	}

	return set.Sorted(), nil
}
