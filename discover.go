package horcrux

import (
	"fmt"
	"strings"

	"github.com/horcrux-project/horcrux-go/errors"
	hlog "github.com/horcrux-project/horcrux-go/log"
	"github.com/horcrux-project/horcrux-go/platform"
	"github.com/horcrux-project/horcrux-go/shard"
)

type splitRunKey struct {
	filename  string
	timestamp int64
}

// AutoBind scans dir for ".horcrux" files, groups the ones that parse
// successfully by (originalFilename, timestamp), and binds the single
// resulting group. It fails with ErrNoShards if nothing parses, or
// ErrAmbiguousShardSets if more than one distinct split run is found.
func AutoBind(dir string, opts BindOptions, fs platform.FileSystem) (BindResult, error) {
	names, err := fs.ReadDir(dir)
	if err != nil {
		return BindResult{}, err
	}

	groups := make(map[splitRunKey][]shard.Shard)
	var order []splitRunKey

	for _, name := range names {
		if !strings.HasSuffix(name, ".horcrux") {
			continue
		}

		path := dir + "/" + name
		data, err := fs.ReadFile(path)
		if err != nil {
			hlog.Log().Warn("autoBind: failed to read candidate shard",
				"path", path, "err", err)
			continue
		}

		s, err := shard.Parse(data)
		if err != nil {
			hlog.Log().Warn("autoBind: failed to parse candidate shard",
				"path", path, "err", err)
			continue
		}

		key := splitRunKey{filename: s.Header.OriginalFilename, timestamp: s.Header.Timestamp}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	if len(groups) == 0 {
		return BindResult{}, errors.ErrNoShards.Clone()
	}
	if len(groups) > 1 {
		filenames := make([]string, len(order))
		for i, k := range order {
			filenames[i] = k.filename
		}
		err := errors.ErrAmbiguousShardSets.Clone()
		err.Msg = fmt.Sprintf("found %d distinct shard sets: %s",
			len(order), strings.Join(filenames, ", "))
		return BindResult{}, err
	}

	return BindHorcruxes(groups[order[0]], opts)
}
