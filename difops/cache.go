package difops

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	OperatorsSection = "operators"
	LaplaceSection   = "laplace"
)

// OptionSource is the configuration lookup the cache resolves methods from
type OptionSource interface {
	GetString(section, key, def string) string
	GetBool(section, key string, def bool) (bool, error)
}

type resolved struct {
	once   sync.Once
	method Difop
	err    error
}

/*
SchemeCache resolves the configured method of each operator family on first use
and keeps the outcome, including a failed resolution, for the life of the
cache. The option source is never consulted again for a family once resolved.
Concurrent first calls are serialised per family.
*/
type SchemeCache struct {
	src      OptionSource
	log      logrus.FieldLogger
	families [numFamilies]resolved
	allTerms struct {
		once sync.Once
		val  bool
		err  error
	}
}

func NewSchemeCache(src OptionSource, log logrus.FieldLogger) *SchemeCache {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SchemeCache{src: src, log: log}
}

func (sc *SchemeCache) Resolve(fam Family) (Difop, error) {
	r := &sc.families[fam]
	r.once.Do(func() {
		info := fam.Info()
		name := info.Default
		if sc.src != nil {
			name = sc.src.GetString(OperatorsSection, info.OptionKey, info.Default)
		}
		r.method, r.err = ParseDifop(name)
		if r.err == nil && r.method == DEFAULT {
			r.err = fmt.Errorf("method %q cannot be the configured default: %w", name, ErrInvalidConfigurationValue)
		}
		if r.err != nil {
			r.err = fmt.Errorf("option %s:%s: %w", OperatorsSection, info.OptionKey, r.err)
			sc.log.WithFields(logrus.Fields{"operator": fam, "value": name}).Error(r.err)
			return
		}
		sc.log.WithFields(logrus.Fields{
			"operator": fam,
			"method":   r.method,
		}).Debug("resolved operator method")
	})
	return r.method, r.err
}

// AllTerms is the laplace:all_terms option, true includes the first derivative
// terms of the perpendicular Laplacian
func (sc *SchemeCache) AllTerms() (bool, error) {
	at := &sc.allTerms
	at.once.Do(func() {
		at.val = true
		if sc.src == nil {
			return
		}
		if at.val, at.err = sc.src.GetBool(LaplaceSection, "all_terms", true); at.err != nil {
			at.err = fmt.Errorf("%v: %w", at.err, ErrInvalidConfigurationValue)
		}
		sc.log.WithField("all_terms", at.val).Debug("resolved laplace options")
	})
	return at.val, at.err
}
