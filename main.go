// main is the entry point for the memscope CLI.
package main

import (
	"github.com/farmtech/memscope/cmd"
	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/internal/history"
)

func main() {
	cmd.SetHistoryManager(history.Manager)
	err := cmd.Execute()
	history.CloseStores()
	if err != nil {
		contract.LogFatal("Cannot run memscope", err)
	}
}
