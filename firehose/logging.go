package firehose

import (
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.PackageLogger("firehose", "github.com/streamingfast/near-firehose-indexer/firehose")
