// Package vehiclerequest contains the VehicleRequest aggregate: a dealer's ask
// for manufacturer stock outside any customer order, used to replenish the
// dealer pool. Manufacturer staff approve or reject pending requests; approval
// allocates the requested stock to the dealer the same way order allocation
// does. The dealer side may cancel a request while it is still pending and
// marks an approved request fulfilled once the vehicles arrive.
package vehiclerequest
