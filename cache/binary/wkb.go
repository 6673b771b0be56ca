// Package binary contains the record format of the result cache.
package binary

import (
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

// MarshalWKBList encodes a list of WKB geometries as a varint count
// followed by length-prefixed blobs.
func MarshalWKBList(wkbs [][]byte) ([]byte, error) {
	size := 10
	for _, wkb := range wkbs {
		size += len(wkb) + 10
	}
	buf := proto.NewBuffer(make([]byte, 0, size))
	if err := buf.EncodeVarint(uint64(len(wkbs))); err != nil {
		return nil, err
	}
	for i, wkb := range wkbs {
		if len(wkb) == 0 {
			return nil, errors.Errorf("empty wkb at index %d", i)
		}
		if err := buf.EncodeRawBytes(wkb); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func UnmarshalWKBList(data []byte) ([][]byte, error) {
	buf := proto.NewBuffer(data)
	n, err := buf.DecodeVarint()
	if err != nil {
		return nil, errors.Wrap(err, "decoding count")
	}
	// every blob needs at least two bytes
	if n > uint64(len(data)) {
		return nil, errors.Errorf("invalid count %d for %d bytes", n, len(data))
	}
	wkbs := make([][]byte, 0, n)
	for i := uint64(0); i < n; i++ {
		wkb, err := buf.DecodeRawBytes(true)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding wkb %d", i)
		}
		wkbs = append(wkbs, wkb)
	}
	return wkbs, nil
}
