package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	before := GetLogger()
	assert.NotNil(t, before)

	InitLogger(logrus.DebugLevel)
	assert.Same(t, before, GetLogger())
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	InitLogger(logrus.InfoLevel)
	assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
}
