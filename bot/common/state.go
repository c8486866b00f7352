package common

import (
	"nsgo/api"

	"github.com/dgraph-io/badger/v4"
)

// Shared handles initialised once by bot.Run before the session opens.
// Commands and event handlers read these, nothing reassigns them afterwards.
var (
	Client *api.Client
	DB     *badger.DB
)

func Init(client *api.Client, db *badger.DB) {
	Client = client
	DB = db
}
