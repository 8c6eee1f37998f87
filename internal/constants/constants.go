package constants

const AppInventoryClient = "inventory-client"
