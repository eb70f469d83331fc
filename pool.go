package doboz

import "sync"

// dictionaryPool recycles the megabyte-scale hash/children arrays a
// dictionary owns, so compressing many blocks back to back (a CLI batch run,
// a benchmark loop) doesn't re-allocate them every call. The hash table is
// still reinitialised on every use.
var dictionaryPool = sync.Pool{
	New: func() any {
		return newDictionary()
	},
}

func acquireDictionary() *dictionary {
	return dictionaryPool.Get().(*dictionary)
}

func releaseDictionary(d *dictionary) {
	if d == nil {
		return
	}
	d.reset()
	dictionaryPool.Put(d)
}
