package xfast

import "errors"

// ErrKeyOutOfRange is returned by Insert when the given key falls
// outside the trie's declared universe [0, range].
var ErrKeyOutOfRange = errors.New("xfast: key outside trie universe")
