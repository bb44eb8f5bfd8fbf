package factory_test

import (
	"fmt"

	"github.com/katalvlaran/patterns/factory"
)

func ExampleNewCar() {
	car, err := factory.NewCar(factory.BusType)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(car.Move())
	fmt.Println(car.Park())

	// Output:
	// bus leaves the stop
	// bus parks at the depot
}
