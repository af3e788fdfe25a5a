package model

import "time"

// seedTimeLayout matches the clock strings of the seed rows ("6:30am").
const seedTimeLayout = BlockDateLayout + " 3:04pm"

type seedRow struct {
	number   int
	address  string
	status   BlockStatus
	time     string
	proposer string
	meterID  string
}

const seedDate = "25/01/2024"

var seedRows = []seedRow{
	{100, "0xID1479C185d32EB90533a0Bb36B3FCa5F84A0E6B", BlockSuccessful, "6:30am", "Christwin. I", "54123456789"},
	{99, "0xID1479C185d32EB90533a0Bb36B3FCa5F84A0E6B", BlockSuccessful, "6:30am", "John Doe", "54123456789"},
	{98, "0xID1479C185d32EB90533a0Bb36B3FCa5F84A0E6B", BlockInvalid, "6:35am", "Christwin. I", "37123456789"},
	{97, "0xID84A0E6B1479C185d32EB90533a0Bb36B3FCa5F", BlockSuccessful, "6:35am", "Jude. G", "62123456789"},
	{96, "0xIDFFEE9185d32EB90533a0Bb36B3FCa5F84A0E6B", BlockInvalid, "6:40am", "Mary Snow", "37123456789"},
	{95, "0xID7A9C185d32EB90533a0Bb36B3FCa5F84A0E6BB", BlockSuccessful, "6:40am", "Tina Wendy", "54123456789"},
	{94, "0xIDCD32185d32EB90533a0Bb36B3FCa5F84A0E6B", BlockInvalid, "6:45am", "Christwin. I", "62123456789"},
	{93, "0xID8479C185d32EB90533a0Bb36B3FCa5F84A0E6B", BlockSuccessful, "6:45am", "Giyu Tomioka", "37123456789"},
	{92, "0xID1479C1B3C2EB90533a0Bb36B3FCa5F84A0E6B", BlockSuccessful, "6:50am", "Christwin. I", "54123456789"},
	{91, "0xID1479C185d32EBAA533a0Bb36B3FCa5F84A0E6B", BlockSuccessful, "6:50am", "Jude. G", "37123456789"},
	{90, "0xIDA23C185d32EB90533a0Bb36B3FCa5F84A0E6B", BlockSuccessful, "6:55am", "Bruce Wayne", "55112233445"},
	{89, "0xID1479C8888EB90533a0Bb36B3FCa5F84A0E6B", BlockInvalid, "6:55am", "Jude. G", "44112233445"},
	{88, "0xID1479C185d32EB90ABCa0Bb36B3FCa5F84A0E6B", BlockSuccessful, "7:00am", "Peter Griffin", "55112233445"},
	{87, "0xID1479C185d32EB90533a0FFBB3FCa5F84A0E6B", BlockSuccessful, "7:00am", "Jude. G", "54123456789"},
	{86, "0xID1479C185D31AB90533a0Bb36B3FCa5F84A0E6B", BlockInvalid, "7:05am", "Christwin. I", "62123456789"},
	{85, "0xID1479C185d32EB90533a0BFD6B3FCa5F84A0E6B", BlockSuccessful, "7:05am", "Joe Swanson", "44112233445"},
	{84, "0xID1479C18AF32EB90533a0Bb36B3FCa5F84A0E6B", BlockInvalid, "7:10am", "Christwin. I", "37123456789"},
	{83, "0xID1479C185d32EB90533a0BDFD3FCa5F84A0E6B", BlockSuccessful, "7:10am", "Jude. G", "55112233445"},
	{82, "0xID1479C185d32EB90C33a0Bb36B3FCa5F84A0E6B", BlockSuccessful, "7:15am", "Christwin. I", "44112233445"},
	{81, "0xID1479C185d32EB90533a0BB66B3FCa5F84A0E6B", BlockSuccessful, "7:15am", "Gyomei Himejima", "54123456789"},
}

// SeedBlocks returns a fresh copy of the fixed block list used in mock mode.
func SeedBlocks() []Block {
	blocks := make([]Block, 0, len(seedRows))
	for _, r := range seedRows {
		// seed rows are static; a parse failure leaves CreatedAt zero
		createdAt, _ := time.Parse(seedTimeLayout, seedDate+" "+r.time)
		blocks = append(blocks, Block{
			Number:    r.number,
			Address:   r.address,
			Status:    r.status,
			Date:      seedDate,
			Time:      r.time,
			Proposer:  r.proposer,
			MeterID:   r.meterID,
			CreatedAt: createdAt,
		})
	}
	return blocks
}
