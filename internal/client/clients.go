package client

type Clients struct {
	*MyMemoryAPI
}

func InitClients() Clients {
	return Clients{
		MyMemoryAPI: NewMyMemoryAPI(),
	}
}
