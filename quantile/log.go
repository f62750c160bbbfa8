package quantile

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "quantile")
