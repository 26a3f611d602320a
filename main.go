package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/movement/internal/movement/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := movement(); err != nil {
		logrus.Fatal(err)
	}
}

func movement() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
