// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
)

// ListFor - fetch critter ids held by an owner
//
// committed records only, ids come back in ascending order starting
// from the given id, up to count of them
func (o *ownershipData) ListFor(owner account.Identifier, start uint64, count int) ([]uint64, error) {

	ownerBytes := owner.Bytes()
	prefix := append(ownerBytes, idKey(start)...)

	cursor := o.index.NewFetchCursor().Seek(prefix)

	// owner ‖ id → nil
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	ids := make([]uint64, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - idKeyLength
		if split <= 0 {
			logger.Panicf("ownership: corrupt index key: %x", item.Key)
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}
		ids = append(ids, binary.BigEndian.Uint64(item.Key[split:]))
	}

	return ids, nil
}
