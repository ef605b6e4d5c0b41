package cli

import (
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

var zlog *zap.Logger

func init() {
	zlog, _ = logging.ApplicationLogger("firenear", "github.com/streamingfast/near-firehose-indexer/cmd/firenear",
		logging.WithSwitcherServerAutoStart(),
	)
}
