package main

import "fmt"

func printBanner() {
	fmt.Println()
	fmt.Println("============================================================")
	fmt.Println("               limitbook - matching engine REPL")
	fmt.Println("============================================================")
}

func printHelp() {
	fmt.Println()
	fmt.Println("Available commands:")
	fmt.Println("------------------------------------------------------------")
	fmt.Println("  limit <buy|sell> <price> <qty>   place a Limit order")
	fmt.Println("  market <buy|sell> <qty>           place a Market order")
	fmt.Println("  peg <buy|sell> <qty>              place a Pegged order")
	fmt.Println("  cancel <order_id>                 cancel an order")
	fmt.Println("  edit <order_id> <price> <qty>     edit an order")
	fmt.Println("  print                             print the order book")
	fmt.Println("  help                              show this message")
	fmt.Println("  exit                              quit")
	fmt.Println("------------------------------------------------------------")
}

const prompt = "\nlimitbook> "
