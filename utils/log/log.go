package log

import (
	"os"

	"github.com/blogicum/blogicum/utils/dotenv"
	"github.com/blogicum/blogicum/utils/flag"
	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()

	// JSON in prod for log collectors, plain text to stderr everywhere else
	// for readability.
	if os.Getenv("BLOGICUM_ENV") == dotenv.ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.SetOutput(os.Stderr)

	Log = logger.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": os.Getenv("BLOGICUM_ENV") != dotenv.ProdEnv},
	)
}
