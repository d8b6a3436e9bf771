// Command xfastdemo drives an xfast.Trie from the command line, for
// ad-hoc poking at the data structure without writing a test.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/aakp10/xfast/xfast"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	rng := flag.Uint64("range", 1023, "upper bound of the key universe [0, range]")
	seed := flag.Uint64("seed", 1, "seed for the random fill, when -fill is used")
	fill := flag.Int("fill", 0, "insert this many random keys before running queries")
	insert := flag.Uint64("insert", 0, "insert this key")
	insertValue := flag.String("value", "", "value to pair with -insert")
	find := flag.Uint64("find", 0, "look up this key")
	doFind := flag.Bool("do-find", false, "actually run -find (distinguishes from its zero value)")
	succ := flag.Uint64("succ", 0, "report the successor of this key")
	doSucc := flag.Bool("do-succ", false, "actually run -succ")
	pred := flag.Uint64("pred", 0, "report the predecessor of this key")
	doPred := flag.Bool("do-pred", false, "actually run -pred")
	del := flag.Uint64("delete", 0, "delete this key")
	doDelete := flag.Bool("do-delete", false, "actually run -delete")
	flag.Parse()

	tr := xfast.New[string](*rng)

	if *fill > 0 {
		r := rand.New(rand.NewSource(int64(*seed)))
		for i := 0; i < *fill; i++ {
			key := r.Uint64() % (*rng + 1)
			if err := tr.Insert(key, "filled"); err != nil {
				log.Fatalf("fill insert(%d): %v", key, err)
			}
		}
		log.Printf("filled %d random keys, trie now holds %d", *fill, tr.Len())
	}

	if *insert != 0 || *insertValue != "" {
		if err := tr.Insert(*insert, *insertValue); err != nil {
			log.Fatalf("insert(%d): %v", *insert, err)
		}
		log.Printf("insert(%d, %q) ok, trie now holds %d", *insert, *insertValue, tr.Len())
	}

	if *doFind {
		v, ok := tr.Find(*find)
		log.Printf("find(%d) = (%q, %v)", *find, v, ok)
	}

	if *doSucc {
		k, v, ok := tr.Successor(*succ)
		log.Printf("successor(%d) = (%d, %q, %v)", *succ, k, v, ok)
	}

	if *doPred {
		k, v, ok := tr.Predecessor(*pred)
		log.Printf("predecessor(%d) = (%d, %q, %v)", *pred, k, v, ok)
	}

	if *doDelete {
		v, ok := tr.Delete(*del)
		log.Printf("delete(%d) = (%q, %v)", *del, v, ok)
	}
}
