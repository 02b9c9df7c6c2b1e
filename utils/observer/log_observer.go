package observer

import (
	log "github.com/sirupsen/logrus"
)

type LogObserver struct {
	log *log.Entry
}

// NewLogObserver logs events carrying a message at info level and bare
// operation events at debug level.
func NewLogObserver(entry *log.Entry) *LogObserver {
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}
	return &LogObserver{
		log: entry,
	}
}

func (o *LogObserver) Observe(e Event) {
	entry := o.log.WithField("op", e.Op)
	if e.Message != "" {
		entry.Info(e.Message)
		return
	}
	entry.Debug("event")
}
