package main

import "go.uber.org/fx"

func main() {
	fx.New(
		ConfigModule,
		InfraModule,
		HandlerModule,
		ServerModule,
	).Run()
}
