// Package holdfast demonstrates and checks ownership, borrowing and
// slicing rules over in-memory text values.
//
// Three rules drive everything here:
//
//  1. Each value has an owner.
//  2. There can only be one owner at a time.
//  3. When the owner goes out of scope, the value is released.
//
// The library surface has two halves. The Engine runs a fixed, ordered
// catalog of scenarios, each narrating one rule:
//
//	eng := holdfast.New()
//	if err := eng.RunAll(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//
// The checker package interprets small annotation scripts and reports
// every rule violation with its line number:
//
//	prog, _ := checker.Parse([]byte("let s = \"hi\"\nmove t = s\nuse s\n"))
//	for _, v := range checker.New().Check(prog) {
//		fmt.Println(v)
//	}
//
// Scenarios are deterministic and independent: running the catalog
// twice produces byte-identical output.
package holdfast
