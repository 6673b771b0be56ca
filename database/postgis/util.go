package postgis

import (
	"database/sql"
	"encoding/binary"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// SplitTableName splits schema.table. Names without schema are in public.
func SplitTableName(name string) (schema, table string) {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "public", name
}

func disableDefaultSslOnLocalhost(params string) string {
	parts := strings.Fields(params)
	isLocalHost := false
	for _, p := range parts {
		if strings.HasPrefix(p, "sslmode=") {
			return params
		}
		if p == "host=localhost" || p == "host=127.0.0.1" {
			isLocalHost = true
		}
	}
	if !isLocalHost {
		return params
	}
	if os.Getenv("PGSSLMODE") != "" {
		return params
	}
	return params + " sslmode=disable"
}

func rollbackIfTx(tx **sql.Tx) {
	if *tx != nil {
		if err := (*tx).Rollback(); err != nil {
			logger.Printf("[error] rollback failed: %s", err)
		}
	}
}

const (
	wkbBigEndian = 0
	wkbSRIDFlag  = 0x20000000
)

// withSRID converts a WKB geometry into EWKB with srid. Geometries that
// already carry an SRID are returned unchanged.
func withSRID(wkb []byte, srid int) ([]byte, error) {
	if len(wkb) < 5 {
		return nil, errors.New("invalid wkb")
	}
	var order binary.ByteOrder = binary.LittleEndian
	if wkb[0] == wkbBigEndian {
		order = binary.BigEndian
	}
	typ := order.Uint32(wkb[1:5])
	if typ&wkbSRIDFlag != 0 {
		return wkb, nil
	}
	ewkb := make([]byte, len(wkb)+4)
	ewkb[0] = wkb[0]
	order.PutUint32(ewkb[1:5], typ|wkbSRIDFlag)
	order.PutUint32(ewkb[5:9], uint32(srid))
	copy(ewkb[9:], wkb[5:])
	return ewkb, nil
}
