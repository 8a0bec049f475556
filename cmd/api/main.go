package main

import (
	protocol "github.com/anjishnu/ask-alexa-twitter/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
