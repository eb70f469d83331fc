package doboz

import "github.com/sirupsen/logrus"

// diagnosticLogger receives the rare, low-frequency events a long-running
// caller might want visibility into. It is never required: a nil logger
// (the default) simply means these events are dropped.
type diagnosticLogger interface {
	debugRebase(newBase, delta int)
	debugStoredFallback(sourceLen, attemptedOffset int)
}

// logrusAdapter implements diagnosticLogger on top of a *logrus.Logger.
type logrusAdapter struct {
	log *logrus.Logger
}

func (a logrusAdapter) debugRebase(newBase, delta int) {
	a.log.WithFields(logrus.Fields{
		"new_base": newBase,
		"delta":    delta,
	}).Debug("doboz: dictionary rebase")
}

func (a logrusAdapter) debugStoredFallback(sourceLen, attemptedOffset int) {
	a.log.WithFields(logrus.Fields{
		"source_len":       sourceLen,
		"attempted_offset": attemptedOffset,
	}).Debug("doboz: pivoting to stored block")
}
