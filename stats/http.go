package stats

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/omniscale/vgeos/log"
)

// StartHttpPProf serves net/http/pprof on bind in the background.
func StartHttpPProf(bind string) {
	go func() {
		log.Println("[error]", http.ListenAndServe(bind, nil))
	}()
}
