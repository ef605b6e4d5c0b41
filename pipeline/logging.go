package pipeline

import (
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.PackageLogger("pipeline", "github.com/streamingfast/near-firehose-indexer/pipeline")
