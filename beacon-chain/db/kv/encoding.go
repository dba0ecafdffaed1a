package kv

import (
	"context"
	"reflect"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"go.opencensus.io/trace"
)

// Values are stored as snappy compressed beacon API JSON.
func decode(ctx context.Context, data []byte, dst interface{}) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.decode")
	defer span.End()

	data, err := snappy.Decode(nil, data)
	if err != nil {
		return errors.Wrap(err, "could not snappy decode value")
	}
	return structs.Unmarshal("", data, dst)
}

func encode(ctx context.Context, v interface{}) ([]byte, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.encode")
	defer span.End()

	if v == nil || reflect.ValueOf(v).IsNil() {
		return nil, errors.New("cannot encode nil value")
	}
	enc, err := structs.Marshal(v)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, enc), nil
}
