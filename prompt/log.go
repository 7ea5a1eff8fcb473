package prompt

import (
	"github.com/sirupsen/logrus"
	"promptclient/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
