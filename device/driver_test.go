package device

import "testing"

func TestDriverListSorting(t *testing.T) {
	defer func() {
		registeredDrivers = nil
	}()

	origList := []*DriverInfo{
		{Order: DetectOrderNormal},
		{Order: DetectOrderLast},
		{Order: DetectOrderEarly},
		{Order: DetectOrderNormal},
	}

	for _, drv := range origList {
		RegisterDriver(drv)
	}

	list := DriverList()
	if exp, got := len(origList), len(list); got != exp {
		t.Fatalf("expected DriverList() to return %d entries; got %d", exp, got)
	}

	expOrder := []int{2, 0, 3, 1}
	for i, exp := range expOrder {
		if list[i] != origList[exp] {
			t.Errorf("expected sorted entry %d to be original entry %d", i, exp)
		}
	}

	if registeredDrivers[0] != origList[0] {
		t.Error("expected DriverList() to leave the registration order untouched")
	}
}
